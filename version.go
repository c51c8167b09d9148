package furrow

// Version is the release of the Furrow library and CLI.
const Version = "0.3.0"
