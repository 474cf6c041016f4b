// Package dsl provides the declarative schema-registration surface for
// resmap resource types. A type is declared once, at startup, with a fluent
// builder naming each field's declared type and cardinality; Build derives
// the sub-constructor table from those declarations, so no reflection over
// Go's type system is ever needed.
package dsl

import (
	resmap "github.com/resmap/resmap"
)

type fieldKind int

const (
	kindInvalid fieldKind = iota
	kindNull
	kindBool
	kindInt
	kindFloat
	kindNumber
	kindString
	kindList
	kindOptional
	kindRef
)

func (k fieldKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindList:
		return "list"
	case kindOptional:
		return "optional"
	case kindRef:
		return "resource"
	default:
		return "invalid"
	}
}

// FieldType is a tagged descriptor of a field's declared type. Descriptors
// only drive which sub-constructor Build registers; they never validate or
// coerce values at parse time.
type FieldType struct {
	kind fieldKind
	elem *FieldType   // element type for list/optional
	ref  *resmap.Type // referenced resource type
}

// Null declares a field that is always null.
func Null() FieldType { return FieldType{kind: kindNull} }

// Bool declares a boolean field.
func Bool() FieldType { return FieldType{kind: kindBool} }

// Int declares an integral number field.
func Int() FieldType { return FieldType{kind: kindInt} }

// Float declares a floating-point number field.
func Float() FieldType { return FieldType{kind: kindFloat} }

// Number declares a number field without committing to int or float.
func Number() FieldType { return FieldType{kind: kindNumber} }

// String declares a string field.
func String() FieldType { return FieldType{kind: kindString} }

// ListOf declares a homogeneous sequence field with the given element type.
func ListOf(elem FieldType) FieldType {
	return FieldType{kind: kindList, elem: &elem}
}

// Optional declares a nullable field with the given underlying type.
func Optional(elem FieldType) FieldType {
	return FieldType{kind: kindOptional, elem: &elem}
}

// Ref declares a field holding a single nested resource of type t.
func Ref(t *resmap.Type) FieldType {
	return FieldType{kind: kindRef, ref: t}
}

func (ft FieldType) isPrimitive() bool {
	switch ft.kind {
	case kindNull, kindBool, kindInt, kindFloat, kindNumber, kindString:
		return true
	default:
		return false
	}
}
