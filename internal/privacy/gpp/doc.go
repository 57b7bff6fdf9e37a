// Package gpp decodes IAB Global Privacy Platform (GPP) consent strings.
//
// A GPP string is a tilde-separated header plus one body per declared
// section, each independently Base64URL-encoded (except US Privacy v1,
// whose body is plain ASCII). This package exposes
// a pure decoder: Parse reads the header and splits out section
// bodies, and DecodeSection/Decode turn a section's raw body into a
// typed Go struct for the section's schema. Decoding never mutates
// shared state and performs no I/O beyond the input string.
package gpp
