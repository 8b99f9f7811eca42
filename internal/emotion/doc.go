// Package emotion implements the five-way emotion classifier: a fixed-weight
// blend of sentiment signals into a normalized score distribution, plus a
// confidence figure derived from how decisively the top emotion leads.
package emotion
