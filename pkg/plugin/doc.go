// Package plugin bootstraps the fake image fillers against a host. Register
// wires the thumbnail, image and gallery filters plus the script enqueue
// action into the host's hooks.Registry.
package plugin
