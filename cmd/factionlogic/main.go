// Command factionlogic serves the decision engine of an autonomous faction.
package main

import "github.com/talgya/faction-logic/cmd/factionlogic/cmd"

func main() {
	cmd.Execute()
}
