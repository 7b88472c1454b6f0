package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagSlot string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Show or clear saved games",
	Long: `Inspect the save database.

Examples:
  snake save list
  snake save show
  snake save show --slot ssh:alice
  snake save clear`,
}

var saveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved games",
	Args:  cobra.NoArgs,
	RunE:  runSaveList,
}

var saveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a saved game as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSaveShow,
}

var saveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete a saved game",
	Args:  cobra.NoArgs,
	RunE:  runSaveClear,
}

func init() {
	saveCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Save slot (default: config save.slot)")
	saveCmd.AddCommand(saveListCmd)
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveClearCmd)
}

// openSlot opens the store and resolves the slot name from flags and config.
func openSlot() (*storage.Store, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	slot := flagSlot
	if slot == "" {
		slot = cfg.Save.Slot
	}
	store, err := storage.Open(cfg.Save.DBPath)
	if err != nil {
		return nil, "", err
	}
	return store, slot, nil
}

func runSaveList(_ *cobra.Command, _ []string) error {
	store, _, err := openSlot()
	if err != nil {
		return err
	}
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("No saved games.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSCORE\tDIFFICULTY\tSAVED")
	for _, s := range slots {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Slot, s.Score, s.Difficulty, s.UpdatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func runSaveShow(_ *cobra.Command, _ []string) error {
	store, slot, err := openSlot()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Load(slot)
	if err != nil {
		return err
	}
	if rec == nil {
		fmt.Printf("No saved game in slot %q.\n", slot)
		return nil
	}

	data, err := rec.Encode()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runSaveClear(_ *cobra.Command, _ []string) error {
	store, slot, err := openSlot()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(slot); err != nil {
		return err
	}
	fmt.Printf("Cleared slot %q.\n", slot)
	return nil
}
