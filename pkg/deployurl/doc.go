// Package deployurl derives the Deploy Button URL from a form snapshot. The
// derivation is a pure function: the same values always produce the same
// string, parameters appear in a fixed order, and absent optional values
// contribute nothing to the query.
package deployurl
