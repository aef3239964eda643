// Package mock provides test doubles for the ai package interfaces.
//
// The mock generator supports scripted replies and custom behavior
// injection via function fields, plus call counting for assertions.
package mock
