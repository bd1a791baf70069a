// Package i18n holds the localized diagnostic and status strings shown to
// users of the solver.
//
// Catalogs are YAML files embedded from locales/<tag>.yaml and registered in
// a golang.org/x/text/message catalog. en-US is the base locale: every other
// locale must define exactly the same keys, which Load enforces.
package i18n
