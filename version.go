package mart

// Version should be set by build flags using the latest git tag:
//   go build -ldflags "-X github.com/tokenmart/mart.Version=$(git describe)"
var Version = "development"
