// corrgo is a command-line manager for correspondence games of Go:
// one move per invocation, with games persisted between turns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"corrgo/board"
	"corrgo/config"
	"corrgo/render"
	"corrgo/sgf"
	"corrgo/store"
	"corrgo/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var cfg *config.Config

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fail("%s", err)
	}

	games := store.New(config.GamesDir())

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "new":
		cmdNew(games, args)
	case "show":
		cmdShow(games, args)
	case "move":
		cmdMove(games, args)
	case "undo":
		cmdUndo(games, args)
	case "list":
		cmdList(games)
	case "delete":
		cmdDelete(games, args)
	case "history":
		cmdHistory(games, args)
	case "moves":
		cmdMoves(games, args)
	case "export":
		cmdExport(games, args)
	case "import":
		cmdImport(games, args)
	case "play":
		cmdPlay(games, args)
	case "version", "-version", "--version":
		fmt.Printf("corrgo %s\n", Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`corrgo - command-line Go game manager

Usage: corrgo <command> [options]

Commands:
  new <name> [-size 9|13|19]                 Create a new game
  show <name> [-move N] [-ascii]             Show the board
  move <name> <pos|pass> [-color c] [-show]  Make a move (e.g. D4, K10)
  undo <name> [-show]                        Undo the last move
  list                                       List all games
  delete <name> [-f]                         Delete a game
  history <name>                             Show numbered move history
  moves <name> [-l]                          Print all moves in order
  export <name> [-o file]                    Export to SGF
  import <name> <file.sgf>                   Create a game from an SGF file
  play <name>                                Play interactively in the terminal`)
}

// fail prints an error to stderr and exits non-zero. Rule violations
// and bad user input both land here at the CLI boundary.
func fail(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}

// loadGame loads a stored game or exits with an error.
func loadGame(games *store.Store, name string) *board.Board {
	b, err := games.Load(name)
	if err != nil {
		fail("%s", err)
	}
	return b
}

// saveGame persists a game or exits with an error.
func saveGame(games *store.Store, name string, b *board.Board) {
	if err := games.Save(name, b); err != nil {
		fail("%s", err)
	}
}

func renderOpts(ascii, hideCoords bool) render.Options {
	return render.Options{ASCII: ascii || cfg.Game.ASCIIBoard, HideCoords: hideCoords}
}

func cmdNew(games *store.Store, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	size := fs.Int("size", cfg.Game.DefaultBoardSize, "board size (9, 13 or 19)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo new <name> [-size 9|13|19]")
	}
	name := fs.Arg(0)

	if games.Exists(name) {
		fail("game %q already exists", name)
	}

	b, err := board.New(*size)
	if err != nil {
		fail("%s", err)
	}
	saveGame(games, name, b)
	fmt.Printf("Created new %dx%d game: %s\n", *size, *size, name)
}

func cmdShow(games *store.Store, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	moveNum := fs.Int("move", -1, "show the board as of move N (0 for empty)")
	ascii := fs.Bool("ascii", false, "plain ASCII output")
	noCoords := fs.Bool("no-coords", false, "hide coordinate labels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo show <name> [-move N] [-ascii] [-no-coords]")
	}
	name := fs.Arg(0)
	b := loadGame(games, name)

	if *moveNum >= 0 {
		if *moveNum > len(b.History()) {
			fail("move %d out of range (0-%d)", *moveNum, len(b.History()))
		}
		b = replayTo(b, *moveNum)
		fmt.Printf("\nGame: %s (at move %d)\n", name, *moveNum)
	} else {
		fmt.Printf("\nGame: %s\n", name)
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(render.Render(b, renderOpts(*ascii, *noCoords)))
}

// replayTo rebuilds the position after the first n history entries.
func replayTo(b *board.Board, n int) *board.Board {
	fresh, err := board.New(b.Size())
	if err != nil {
		fail("%s", err)
	}
	for _, m := range b.History()[:n] {
		if m.IsPass() {
			fresh.Pass(m.Color)
			continue
		}
		if ok, reason := fresh.Place(m.X, m.Y, m.Color); !ok {
			fail("stored history is inconsistent at %s: %s", m, reason)
		}
	}
	return fresh
}

func cmdMove(games *store.Store, args []string) {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	colorFlag := fs.String("color", "", "stone color (black or white, auto-detected if omitted)")
	show := fs.Bool("show", false, "show the board after the move")
	ascii := fs.Bool("ascii", false, "plain ASCII output")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fail("usage: corrgo move <name> <pos|pass> [-color black|white] [-show]")
	}
	name, position := fs.Arg(0), fs.Arg(1)
	b := loadGame(games, name)

	color := b.NextColor()
	switch strings.ToLower(*colorFlag) {
	case "":
	case "black", "b":
		color = board.Black
	case "white", "w":
		color = board.White
	default:
		fail("invalid color %q", *colorFlag)
	}

	if strings.EqualFold(position, "pass") {
		b.Pass(color)
		saveGame(games, name, b)
		fmt.Printf("%s passes.\n", color)
		return
	}

	x, y, err := board.ParseHuman(position, b.Size())
	if err != nil {
		fail("invalid move format: %s", err)
	}

	if ok, reason := b.Place(x, y, color); !ok {
		fail("invalid move at %s - %s", position, reason)
	}

	saveGame(games, name, b)
	fmt.Printf("%s plays at %s\n", color, strings.ToUpper(position))

	if *show {
		fmt.Println()
		fmt.Println(render.Render(b, renderOpts(*ascii, false)))
	}
}

func cmdUndo(games *store.Store, args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	show := fs.Bool("show", false, "show the board after the undo")
	ascii := fs.Bool("ascii", false, "plain ASCII output")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo undo <name> [-show]")
	}
	name := fs.Arg(0)
	b := loadGame(games, name)

	history := b.History()
	if len(history) == 0 {
		fail("no moves to undo in game %q", name)
	}
	last := history[len(history)-1]

	if !b.UndoLast() {
		fail("failed to undo move")
	}
	saveGame(games, name, b)
	fmt.Printf("Undone: move %d - %s\n", len(history), last)

	if *show {
		fmt.Println()
		fmt.Println(render.Render(b, renderOpts(*ascii, false)))
	}
}

func cmdList(games *store.Store) {
	infos, err := games.List()
	if err != nil {
		fail("%s", err)
	}
	if len(infos) == 0 {
		fmt.Println("No games found.")
		return
	}

	fmt.Println("Available games:")
	for _, g := range infos {
		fmt.Printf("  %-20s - %dx%d board, %d moves, %s to play\n",
			g.Name, g.BoardSize, g.BoardSize, g.MoveCount, g.NextColor)
	}
}

func cmdDelete(games *store.Store, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	force := fs.Bool("f", false, "skip confirmation")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo delete <name> [-f]")
	}
	name := fs.Arg(0)

	if !games.Exists(name) {
		fail("game %q not found", name)
	}

	if !*force {
		fmt.Printf("Are you sure you want to delete game %q? (y/N): ", name)
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Cancelled.")
			return
		}
	}

	if err := games.Delete(name); err != nil {
		fail("%s", err)
	}
	fmt.Printf("Deleted game: %s\n", name)
}

func cmdHistory(games *store.Store, args []string) {
	if len(args) < 1 {
		fail("usage: corrgo history <name>")
	}
	name := args[0]
	b := loadGame(games, name)

	if len(b.History()) == 0 {
		fmt.Println("No moves played yet.")
		return
	}

	fmt.Printf("Move history for game %q:\n", name)
	fmt.Println(strings.Repeat("-", 40))
	for i, m := range b.History() {
		fmt.Printf("%3d. %s\n", i+1, m)
	}
}

func cmdMoves(games *store.Store, args []string) {
	fs := flag.NewFlagSet("moves", flag.ExitOnError)
	onePerLine := fs.Bool("l", false, "print one move per line with numbers")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo moves <name> [-l]")
	}
	name := fs.Arg(0)
	b := loadGame(games, name)

	if len(b.History()) == 0 {
		fmt.Println("No moves played yet.")
		return
	}

	var moves []string
	for _, m := range b.History() {
		if m.IsPass() {
			moves = append(moves, "pass")
		} else {
			moves = append(moves, board.HumanCoord(m.X, m.Y))
		}
	}

	if *onePerLine {
		for i, s := range moves {
			fmt.Printf("%d. %s\n", i+1, s)
		}
	} else {
		fmt.Println(strings.Join(moves, " "))
	}
}

func cmdExport(games *store.Store, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("o", "", "output file (stdout if omitted)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fail("usage: corrgo export <name> [-o file]")
	}
	name := fs.Arg(0)
	b := loadGame(games, name)

	if *output != "" {
		if err := sgf.WriteFile(*output, b); err != nil {
			fail("%s", err)
		}
		fmt.Printf("Exported game to: %s\n", *output)
		return
	}
	fmt.Print(sgf.Export(b))
}

func cmdImport(games *store.Store, args []string) {
	if len(args) < 2 {
		fail("usage: corrgo import <name> <file.sgf>")
	}
	name, path := args[0], args[1]

	if games.Exists(name) {
		fail("game %q already exists", name)
	}

	rec, err := sgf.ReadFile(path)
	if err != nil {
		fail("%s", err)
	}

	b, err := board.New(rec.BoardSize)
	if err != nil {
		fail("%s", err)
	}
	for i, m := range rec.Moves {
		if m.IsPass() {
			b.Pass(m.Color)
			continue
		}
		if ok, reason := b.Place(m.X, m.Y, m.Color); !ok {
			fail("SGF move %d (%s) is illegal: %s", i+1, m, reason)
		}
	}

	saveGame(games, name, b)
	fmt.Printf("Imported %d moves into %dx%d game: %s\n", len(rec.Moves), b.Size(), b.Size(), name)
}

func cmdPlay(games *store.Store, args []string) {
	if len(args) < 1 {
		fail("usage: corrgo play <name>")
	}
	name := args[0]
	b := loadGame(games, name)

	app := tview.NewApplication()

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	gameBoard := ui.NewGoBoard(app, cfg, hint, b)
	gameBoard.OnChange = func() {
		if err := games.Save(name, b); err != nil {
			app.Stop()
			fail("%s", err)
		}
	}

	panel := ui.NewGameInfoPanel(name, b)
	frame := ui.CreateGameLayout(gameBoard, panel, hint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlayMove()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, -1)
			case 'k':
				gameBoard.MoveSelection(0, 1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'p':
				gameBoard.Pass()
			case 'u':
				gameBoard.Undo()
			case 'q':
				app.Stop()
			}
		}
		return event
	})

	root := tview.NewPages()
	root.SetBorder(true).SetTitle(fmt.Sprintf(" ⬡ corrgo - %s ", name))
	root.AddPage("game", frame, true, true)

	if err := app.SetRoot(root, true).Run(); err != nil {
		panic(err)
	}
}
