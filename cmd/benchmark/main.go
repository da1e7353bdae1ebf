package main

import (
	"flag"
	"fmt"
	"time"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// 两套搜索配置互搏，交替先后手，统计胜负
func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	fastTime := flag.Duration("fast", 500*time.Millisecond, "fast player's budget per move")
	slowTime := flag.Duration("slow", 2*time.Second, "slow player's budget per move")
	flag.Parse()

	playerFast := PlayerConfig{
		Name: fmt.Sprintf("Fast (%v)", *fastTime),
		Cfg:  engine.SearchConfig{TimeLimit: *fastTime},
	}
	playerSlow := PlayerConfig{
		Name: fmt.Sprintf("Slow (%v)", *slowTime),
		Cfg:  engine.SearchConfig{TimeLimit: *slowTime},
	}

	fastWins := 0
	slowWins := 0
	draws := 0

	for g := 0; g < *totalGames; g++ {
		var red, green PlayerConfig
		if g%2 == 0 {
			red, green = playerFast, playerSlow
		} else {
			red, green = playerSlow, playerFast
		}

		fmt.Printf("\n=== Game %d: Red [%s] vs Green [%s] ===\n", g+1, red.Name, green.Name)
		winner := playGame(red, green)

		switch {
		case winner == tiaoqi.Red && g%2 == 0, winner == tiaoqi.Green && g%2 == 1:
			fastWins++
			fmt.Printf("Result: %s wins\n", playerFast.Name)
		case winner == tiaoqi.Red || winner == tiaoqi.Green:
			slowWins++
			fmt.Printf("Result: %s wins\n", playerSlow.Name)
		default:
			draws++
			fmt.Println("Result: draw")
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerFast.Name, fastWins)
	fmt.Printf("%s: %d\n", playerSlow.Name, slowWins)
	fmt.Printf("Draws: %d\n", draws)
}

func playGame(red, green PlayerConfig) tiaoqi.Side {
	// 每局新引擎，避免上一局的置换表串味
	e := engine.NewEngine(0)
	st := tiaoqi.NewInitialState()
	maxMoves := 400 // 防止死循环

	for i := 0; i < maxMoves; i++ {
		var cfg engine.SearchConfig
		if st.Turn() == tiaoqi.Red {
			cfg = red.Cfg
		} else {
			cfg = green.Cfg
		}

		res, err := e.SearchBestMove(st, cfg)
		if err != nil || res.BestMove.IsNull() {
			// 无子可动或搜索失败，当前方输
			return opponent(st.Turn())
		}

		st.ApplyMove(res.BestMove)

		if st.IsGameOver() {
			// 刚走完的一方到齐
			return opponent(st.Turn())
		}
	}
	return tiaoqi.NoSide
}

func opponent(s tiaoqi.Side) tiaoqi.Side {
	if s == tiaoqi.Red {
		return tiaoqi.Green
	}
	return tiaoqi.Red
}
