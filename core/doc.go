// Package core contains the media exchange capability contract, typed errors,
// configuration and the Service that selects a provider adapter and invokes a
// single operation on it. Provider and transport packages depend on core; core
// must not depend on them.
package core
