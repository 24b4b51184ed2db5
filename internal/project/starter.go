package project

import "fmt"

// Starter returns a minimal kindgen.toml for package pkg with an empty
// managed feature region.
func Starter(pkg string) string {
	return fmt.Sprintf(`# kindgen manifest
[generator]
schema = "node-types.json"
package = %q
# output = %q
# type = "NodeType"
# catch-all = "node_full"
# placeholder = ""
# default-features = ["node_full"]

[features]
node_full = []
# <!-- generated-features-start -->
# <!-- generated-features-end -->
`, pkg, DefaultOutput)
}
