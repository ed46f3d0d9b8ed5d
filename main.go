package main

import (
	"github.com/audiohw/audiotree/cmd"

	_ "github.com/audiohw/audiotree/internal/hal/coreaudio"
)

func main() {
	cmd.Execute()
}
