package main

import (
	"fmt"
	"os"
)

func main() {
	ins := &inspector{}
	err := newRootCmd(ins).Execute()
	if closeErr := ins.close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
