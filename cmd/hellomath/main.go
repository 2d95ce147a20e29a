// Command hellomath prints descriptive statistics and a simple linear
// regression for a paired sample set.
package main

import "github.com/arloliu/hellomath/internal/cli"

func main() {
	cli.Execute()
}
