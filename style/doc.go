/*
Package style provides the property keys and typed property values of
widget stylesheets.

Status

The set of properties is fixed. Adding a property means adding a key,
a grammar and a default here; the parser and the cascade pick it up
without further changes.

Overview

A stylesheet declaration like

    padding: 2 4;

names a property key ("padding") and a raw value ("2 4"). Package style
decodes the raw value into a typed value according to the grammar of the
key. Decoding is pure: it never loads resources, it never consults
global state, and it either returns a value or a *ValueParseError.

Values of type url are not resolved. They decode to an opaque Resource
identifier which clients may hand to a loader.

Every property has a built-in default (see Default), which is what
layout and rendering code should assume for properties no rule sets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.style'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.style")
}
