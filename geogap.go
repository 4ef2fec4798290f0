// Package geogap compares the content structure of a target web page with the
// structure an ideal answer to a question would have, using a set of
// reference pages for context. It fetches pages, splits them into
// heading-delimited sections, asks a generative-text service for an exemplar
// answer, classifies that answer's format and reports structural gaps.
//
// This package contains domain types, interfaces and the pure analysis rules
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gemini/, openai/).
package geogap
