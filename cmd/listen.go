package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", constants.GetMidiInPort(), "MIDI in port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long: `Names the chord held on a MIDI input whenever the held keys settle.
Stop with ctrl-c.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(cmd.OutOrStdout(), listenPort)
	},
}

// heldKeys is written from the driver callback and read by the debounced
// namer.
type heldKeys struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{keys: make(map[uint8]bool)}
}

func (h *heldKeys) press(k uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[k] = true
}

func (h *heldKeys) release(k uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, k)
}

func (h *heldKeys) snapshot() model.Keys {
	h.mu.Lock()
	keys := maps.Keys(h.keys)
	h.mu.Unlock()
	slices.Sort(keys)
	return keys
}

// handle updates held from msg and reports whether it changed anything.
func (h *heldKeys) handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.press(key)
	case msg.GetNoteEnd(&ch, &key):
		h.release(key)
	default:
		return false
	}
	return true
}

func listen(w io.Writer, port int) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "could not open MIDI in port %d", port)
	}

	held := newHeldKeys()
	debounced := debounce.New(constants.ListenDebounce)
	name := func() {
		keys := held.snapshot()
		if len(keys) > 0 {
			fmt.Fprintf(w, "%-16s %v\n", fmt.Sprint(keys), describe(keys))
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if held.handle(msg) {
			debounced(name)
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}
	defer stop()

	logrus.Infof("listening on %v, ctrl-c to stop", in)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	<-ctx.Done()
	return nil
}
