package main

import (
	"fmt"

	"tiaoqi/internal/tiaoqi"
)

func main() {
	st := tiaoqi.NewInitialState()
	fmt.Println("position:", st.Encode())
	moves := st.LegalMoves()
	fmt.Println("legal moves:", len(moves))
	for _, mv := range moves {
		fmt.Printf("  %d -> %d\n", mv.Src, mv.Dst)
	}
}
