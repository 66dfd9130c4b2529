// Package artcrawl turns a list of seed URLs into a quota-bounded set of
// validated article records. Each seed page is fetched once to discover
// links; each discovered link is fetched, parsed into an article and kept
// only if it passes the admission rule. Links that fail get exactly one
// more attempt after all seeds are exhausted.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package artcrawl
