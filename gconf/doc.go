/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

This package allows to load configuration from a genesis file and access it
later from the database. Each package keeps a single configuration object
stored under a well known key.

*/
package gconf
