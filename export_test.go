package fswatch

// Components builds the shared application graph.
var Components = components
