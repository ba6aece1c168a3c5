// Command creational demonstrates the builder, prototype and singleton
// packages from the command line.
//
// Usage
//
//	creational builder   [--recipe a|b|c|all]
//	creational prototype [--year 2020 --color Red --title Central --clones 3 --library-delay 3s]
//	creational singleton [--accessors 8] [--race-naive]
//
// Global flags
//
//	--log-level debug|info|warn|error
//
// Every setting can also be supplied through the environment with the
// CREATIONAL_ prefix (CREATIONAL_LOG_LEVEL, CREATIONAL_LIBRARY_DELAY,
// CREATIONAL_ACCESSORS). Flags win over the environment.
//
// Exit codes
//
//	0  success
//	1  invalid configuration or runtime failure
//	2  bad command-line usage
package main
