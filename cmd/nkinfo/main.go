// Command nkinfo evaluates optical dispersion data and prints n and k, or
// the permittivity, over a spectrum.
//
// Usage:
//
//	nkinfo [flags]
//	nkinfo models
//	nkinfo kk [--window min,max]
//	nkinfo mix --rule bruggeman --part source:fraction ...
//
// A material comes from a file (--file), a dispersion model (--model with
// --params) or fixed values (--n, --k). Every flag can also be set in a
// config file (--config) or through NKINFO_ environment variables, e.g.
// NKINFO_INTERP_ORDER=3.
//
// Examples:
//
//	nkinfo --n 1.5 --k 0.01 --range 400,800 --points 5
//	nkinfo --file BK7.yml --eps
//	nkinfo --model drude --params 8.55,0.0184 --kind energy --unit eV --range 1,5
//	nkinfo models
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
