package common

// Version is the current version of the minipyc compiler.
const Version = "0.1.0"

// ProjectFileName is the name of the optional project manifest file.
const ProjectFileName = "minipy.toml"
