// Package feed defines the wire types of the wallpaper feed API: the link
// record the server publishes, the response a user posts back, and the URL
// layout of the endpoints.
package feed
