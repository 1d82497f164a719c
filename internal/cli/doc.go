// Package cli implements the repas command line.
//
// Commands:
//
//	serve       run the HTTP API
//	extract     print the known ingredients found in text
//	recipe      generate a recipe for a list of ingredients
//	vocabulary  list the known ingredients
//
// Configuration is read from the environment the same way the API reads it.
package cli
