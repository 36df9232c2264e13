package devdraw

import (
	"log"
)

// check logs and panics on errors from devdraw that leave the window unusable.
func check(err error, msg string) {
	if err != nil {
		log.Printf("devdraw: %s: %s\n", msg, err)
		panic(err)
	}
}
