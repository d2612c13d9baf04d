// Package dsl provides the schema builders: Boolean, Integer, Unsigned,
// Float, String, Array and Object. Every builder implements okschema.Schema,
// chains configuration by returning itself, and is immutable once
// construction finishes — a built schema may validate inputs from many
// goroutines concurrently.
package dsl
