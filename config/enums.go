package config

//go:generate go tool go-enum --marshal --names

// Specification of resizing applied to embedded binary images before they are
// encoded into the output document.
// ENUM(none, scale, stretch)
type ImageResizeMode int
