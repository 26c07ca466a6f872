// Package providers contains the built-in media provider adapters and their
// registration helper.
package providers
