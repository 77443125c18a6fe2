// Package kcparse extracts structured item records from the knowledge
// carousel embedded in a rendered search results page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package kcparse
