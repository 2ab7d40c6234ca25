// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/gui/paudio"
	"github.com/gopherdmg/gopherdmg/gui/sdlaudio"
	"github.com/gopherdmg/gopherdmg/gui/sdlplay"
	"github.com/gopherdmg/gopherdmg/gui/termplay"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/television"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/playmode"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/gopherdmg/gopherdmg/userinput"
	"github.com/gopherdmg/gopherdmg/wavwriter"
)

// the amount of time the main thread sleeps if there is no gui to service.
const idleDelay = 10 * time.Millisecond

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// SDL requires that all event handling happens on the thread main() was
// started on.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var scr gui.GUI
	serviced := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if scr != nil {
				scr.Destroy()
			}

		case creator := <-sync.creator:
			if scr != nil {
				scr.Destroy()
				scr = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				scr = g
				serviced = true
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			// the gui is no longer serviced once it has indicated that it
			// can't be. the emulation will have been told to quit
			if scr != nil && serviced {
				serviced = scr.Service()
			} else {
				time.Sleep(idleDelay)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "INSPECT", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "INSPECT":
		err = inspect(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// newGameBoy creates the television and console. preferences can be
// specified on the command line as a string of key::value pairs.
func newGameBoy(cmdlinePrefs string) (*hardware.GameBoy, *preferences.Preferences, error) {
	prefs.PushCommandLineStack(cmdlinePrefs)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	tv := television.NewTelevision()

	gb, err := hardware.NewGameBoy(tv, p)
	if err != nil {
		return nil, nil, err
	}

	return gb, p, nil
}

// create the gui on the main thread and wait for the result.
func createGUI(sync *mainSync, creator func() (gui.GUI, error)) error {
	sync.creator <- creator
	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}
	return nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scaling")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	wav := md.AddString("wav", "", "record audio to wav file")
	serial := md.AddBool("serial", false, "echo serial output to stdout")
	usePortAudio := md.AddBool("portaudio", false, "use portaudio for sound output")
	cmdlinePrefs := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gb, hwPrefs, err := newGameBoy(*cmdlinePrefs)
	if err != nil {
		return err
	}
	defer gb.TV.End()

	if *serial {
		gb.SetSerialOutput(md.Output)
	}

	sampleRate := hwPrefs.SampleRate.Get().(int)

	if *wav != "" {
		aw, err := wavwriter.NewWavWriter(*wav, sampleRate)
		if err != nil {
			return err
		}
		gb.TV.AddAudioMixer(aw)
	}

	pl, err := playmode.NewPlaymode(gb, cartridgeloader.NewLoader(md.GetArg(0)), userinput.DefaultKeys)
	if err != nil {
		return err
	}
	defer gb.Eject()

	err = createGUI(sync, func() (gui.GUI, error) {
		return sdlplay.NewSdlPlay(gb.TV, *scale, pl.UserInput())
	})
	if err != nil {
		return err
	}

	// the emulation continues without sound if the audio device can not be
	// opened
	var aud television.AudioMixer
	if *usePortAudio {
		aud, err = paudio.NewAudio(sampleRate)
	} else {
		aud, err = sdlaudio.NewAudio(sampleRate)
	}
	if err != nil {
		logger.Log(logger.Allow, "gopherdmg", err)
	} else {
		gb.TV.AddAudioMixer(aud)
	}

	// turn off fallback ctrl-c handling. playmode has its own handler
	sync.state <- stateRequest{req: reqNoIntSig}

	return pl.Play()
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")
	serial := md.AddBool("serial", false, "echo serial output to stderr")
	cmdlinePrefs := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the terminal is used for the display so logging and serial output go
	// to stderr
	if *log {
		logger.SetEcho(os.Stderr, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gb, _, err := newGameBoy(*cmdlinePrefs)
	if err != nil {
		return err
	}
	defer gb.TV.End()

	if *serial {
		gb.SetSerialOutput(os.Stderr)
	}

	pl, err := playmode.NewPlaymode(gb, cartridgeloader.NewLoader(md.GetArg(0)), userinput.TerminalKeys)
	if err != nil {
		return err
	}
	defer gb.Eject()

	err = createGUI(sync, func() (gui.GUI, error) {
		return termplay.NewTermPlay(gb.TV, pl.UserInput())
	})
	if err != nil {
		return err
	}

	sync.state <- stateRequest{req: reqNoIntSig}

	return pl.Play()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 600, "number of frames to run")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")
	cmdlinePrefs := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output, *statsAddr)
		} else {
			fmt.Fprintln(md.Output, "statsview not available in this build")
		}
	}

	gb, _, err := newGameBoy(*cmdlinePrefs)
	if err != nil {
		return err
	}
	defer gb.TV.End()

	err = gb.AttachCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}
	defer gb.Eject()

	return performance.Check(md.Output, *profile, gb, *frames)
}
