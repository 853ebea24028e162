// Package catalogue reads material records from files.
//
// Two formats are supported. YAML files follow the refractiveindex.info
// database layout (REFERENCES, COMMENTS, DATA, SPECS) and may carry
// several datasets, each either tabulated ("tabulated nk") or parametric
// ("formula 2", "model Drude"). Text files (.txt, .csv) hold a single
// table preceded by "#Key: value" header lines.
//
// Spectral coordinates default to wavelength in µm, the database
// convention. The result is a [material.Record]; use [material.FromRecord]
// or [Load] to build a material from it.
package catalogue
