// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package properties provides a parser and typed key/value store for
".properties"-style configuration files.

A store gives two views over the same data: a flat mapping from full
dotted keys ("db.host") to typed values, and a nested tree built by
splitting keys on dots. Values are coerced from their raw text into a
number, a boolean, or a string.

Syntax

A properties file is plain text processed one line at a time. Leading
and trailing whitespace on every line is ignored, as are blank lines.

A property is a key and an optional value separated by the first
equals sign ('=') on the line:

	key=value

Whitespace around the key and around the value is ignored. A line
without an equals sign is a property whose value is the empty string,
so a bare "flag" line sets the key "flag" to "".

Properties may be grouped into sections. A section header is a name of
one or more ASCII letters and digits in square brackets on its own
line:

	[db]
	host=localhost

Every property after a section header has the section name and a dot
prepended to its key, so the example above sets "db.host". A line that
does not have the exact bracket-alphanumeric shape (for example
"[db-1]") is not a section header and is parsed as an ordinary
property. There is no way to return to the unprefixed namespace within
a single text; each call to Read starts outside any section.

There are no comments, escape sequences, multi-line values, or nested
sections. Parsing never fails: lines that fit no rule are skipped.

Value coercion

Each raw value is converted to exactly one typed form:

	- a number, if the trimmed text is non-empty and parses as an
	  integer or floating point literal (signs, exponents, and base
	  prefixes such as "0x10" are accepted);
	- a boolean, if the text is exactly "true" or "false";
	- otherwise the trimmed text itself, possibly the empty string.

Repeated keys

Setting a key that already exists overwrites the earlier value, both
in the flat mapping and in the nested tree. A key that is a strict
prefix of another key (setting both "a" and "a.b") is ambiguous in the
tree: whichever is set last wins at the shared node, while the flat
mapping keeps both entries.
*/
package properties
