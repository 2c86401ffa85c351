package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajwerner/splay/strmap"
)

// newDemoCmd builds the scripted demonstration: a fixed sequence of
// inserts, lookups (hit and miss), and a deletion, printing each result.
func newDemoCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted insert/get/delete sequence",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			m := strmap.New()

			m.Insert("keyOne", "valueOne")
			m.Insert("keyTwo", "valueTwo")
			m.Insert("keyThree", "valueThree")
			log.Debug().Int("len", m.Len()).Msg("inserted demo keys")

			for _, k := range []string{"keyOne", "keyThree", "keyDoesNotExist"} {
				if v, ok := m.Get(k); ok {
					fmt.Printf("%s = %s\n", k, v)
				} else {
					fmt.Printf("%s not found\n", k)
				}
			}

			m.Delete("keyOne")
			_, ok := m.Get("keyOne")
			fmt.Printf("keyOne present after delete: %t\n", ok)
		},
	}
}
