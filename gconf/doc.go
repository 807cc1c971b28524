/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

This package allows to load configuration from a genesis file and update it
at runtime via a patch message handled by UpdateConfigurationHandler.

*/
package gconf
