// Package banner composes the LockedIn marketing banner.
//
// A banner is a 2500x1000 canvas in the brand cream colour. It has the app
// icon on the left, a four-line tagline next to the icon, and a phone
// screenshot on the right with rounded corners and a soft drop shadow. An
// orange accent bar runs along the top edge. Every position, size and colour
// lives in a Layout. DefaultLayout reproduces the published banner, and
// LoadLayout overlays a YAML file on top of it.
//
// Text is rendered with the system Helvetica when available and falls back to
// the embedded Go Regular font otherwise. The package works entirely in
// memory; SavePNG is the only function that touches the filesystem for
// output.
package banner
