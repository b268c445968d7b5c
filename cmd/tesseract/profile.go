// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"cmp"
	"maps"
	"os"
	"slices"

	"github.com/pkg/profile"
	"github.com/tesseract-graph/tesseract/internal/pkg/enumflag"
)

// profileModes selects what --profile records while explore or stream runs.
var profileModes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"alloc":     profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"goroutine": profile.GoroutineProfile,
	"trace":     profile.TraceProfile,
}

var (
	profileFlag    = enumflag.New(os.Getenv("TESSERACT_PROFILE"), slices.Collect(maps.Keys(profileModes))...)
	profileDirFlag = rootCmd.PersistentFlags().String("profile-path", cmp.Or(os.Getenv("TESSERACT_PROFILE_PATH"), "."),
		"Directory for profile output")
)

func init() {
	rootCmd.PersistentFlags().Var(profileFlag, "profile", profileFlag.Usage("Profile the exploration"))
}

// startProfile starts the profile selected by --profile and returns the function that writes it.
func startProfile() (stop func()) {
	mode, ok := profileModes[profileFlag.String()]
	if !ok {
		return func() {}
	}
	log.V(1).Info("Profiling", "mode", profileFlag.String(), "dir", *profileDirFlag)
	return profile.Start(mode, profile.ProfilePath(*profileDirFlag), profile.Quiet, profile.NoShutdownHook).Stop
}
