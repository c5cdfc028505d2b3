package main

import (
	"fmt"

	_ "github.com/vital-tools/go-vital/cache"
	_ "github.com/vital-tools/go-vital/dict"
	_ "github.com/vital-tools/go-vital/env"
	_ "github.com/vital-tools/go-vital/logger"
	_ "github.com/vital-tools/go-vital/memo"
	_ "github.com/vital-tools/go-vital/slice"
	_ "github.com/vital-tools/go-vital/string"
)

func main() {
	fmt.Println("Hi")
}
