package main

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/ggriffiniii/google-apis/apigen/rust/manifest"
)

//go:embed VERSION
var embeddedVersion string

const modulePath = "github.com/ggriffiniii/google-apis"

// buildVersion identifies the running generator binary.
type buildVersion struct {
	Version  string
	Module   string
	Revision string
	Dirty    bool
}

// currentVersion reports the module version for `go install ...@version`
// builds, otherwise "devel-" plus the VERSION file and the VCS revision.
func currentVersion() buildVersion {
	info, _ := debug.ReadBuildInfo()
	return readVersion(strings.TrimSpace(embeddedVersion), info)
}

func readVersion(base string, info *debug.BuildInfo) buildVersion {
	v := buildVersion{Version: base, Module: modulePath}
	if info == nil {
		return v
	}
	if info.Main.Path != "" {
		v.Module = info.Main.Path
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
		return v
	}
	v.Version = "devel-" + base
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				v.Revision = s.Value[:7]
			}
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}
	if v.Revision != "" {
		v.Version += "+" + v.Revision
		if v.Dirty {
			v.Version += ".dirty"
		}
	}
	return v
}

// String renders the version line followed by the crate the generator targets.
func (v buildVersion) String() string {
	cargo := manifest.Cargo("")
	reqwest, _ := cargo.Dependencies["reqwest"].(string)
	return fmt.Sprintf("google-apis-gen %s (%s)\ntarget: rust edition %s, reqwest %s",
		v.Version, v.Module, cargo.Package.Edition, reqwest)
}
