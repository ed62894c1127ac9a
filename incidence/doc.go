// Package incidence implements the minimal 7-point/7-line incidence design
// (the Fano plane) used as a consistency oracle by the validation pipeline.
//
// Identifiers are 1..7. Every line holds 3 identifiers, every identifier lies
// on 3 lines, and every pair of distinct identifiers shares exactly one line.
// Construction verifies all of this and refuses to return a malformed design;
// queries on a returned Structure never fail for valid arguments.
package incidence
