// Package internal holds the plumbing shared by the diffmask commands:
// turning a configuration into a merge plan and building the merged mask.
package internal

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/maskfile"
	"github.com/arthur-debert/diffmask/pkg/maskmerge"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/portage"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// Env is what every command runs against.
type Env struct {
	FS     types.FS
	Config *config.Config
	Paths  paths.Paths
}

// Merged is the canonical package.mask built for an Env.
type Merged struct {
	Lines []string
	File  *maskfile.File
	Plan  maskmerge.Plan
}

// Text is the merged document as built, before parsing.
func (m *Merged) Text() string {
	return strings.Join(m.Lines, "")
}

// Sources lists the section names of the merged file in merge order.
func (m *Merged) Sources() []string {
	out := []string{}
	for _, r := range m.File.Named() {
		out = append(out, r.Name)
	}
	return out
}

func (e Env) Locations() config.Locations {
	return e.Config.Locations(e.Paths)
}

// UnmaskPath is the resolved package.unmask location, or override when
// it is set.
func (e Env) UnmaskPath(override string) string {
	if override != "" {
		return e.Paths.Resolve(override)
	}
	return e.Locations().UnmaskFile
}

// Plan enumerates repositories and profiles into merge order.
func (e Env) Plan() (maskmerge.Plan, error) {
	logger := logging.GetLogger("commands")
	loc := e.Locations()

	reposConf := portage.ReposConf{FS: e.FS, Path: loc.ReposConf}
	enum := portage.Chain{
		reposConf,
		portage.Layman{FS: e.FS, Path: loc.LaymanInstalled, Storage: loc.LaymanStorage},
		portage.Static{FS: e.FS, Repos: resolveRepos(e.Paths, e.Config.Repositories)},
	}
	repos, err := enum.Repositories()
	if err != nil {
		return maskmerge.Plan{}, err
	}

	plan := maskmerge.Plan{Repositories: repos}

	main, ok, err := reposConf.MainRepo()
	if err != nil {
		return maskmerge.Plan{}, err
	}
	if ok {
		plan.ProfilesRoot = main.ProfilesDir()
		if e.Config.Merge.MainLast {
			plan.Main = &main
		}
	}

	if profiles := e.Config.ResolvedProfiles(e.Paths); len(profiles) > 0 {
		plan.Profiles = profiles
	} else {
		plan.Profiles, err = portage.ProfileStack(e.FS, loc.MakeProfile, repos...)
		if err != nil {
			return maskmerge.Plan{}, err
		}
	}

	logPlan(logger, plan)
	return plan, nil
}

// Merge builds and parses the canonical package.mask.
func (e Env) Merge() (*Merged, error) {
	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}
	lines, err := maskmerge.NewBuilder(e.FS).Build(plan)
	if err != nil {
		return nil, err
	}
	return &Merged{Lines: lines, File: maskfile.Parse(lines), Plan: plan}, nil
}

func resolveRepos(p paths.Paths, repos []portage.Repository) []portage.Repository {
	out := make([]portage.Repository, 0, len(repos))
	for _, r := range repos {
		r.Location = p.Resolve(r.Location)
		out = append(out, r)
	}
	return out
}

func logPlan(logger zerolog.Logger, plan maskmerge.Plan) {
	names := make([]string, 0, len(plan.Repositories))
	for _, r := range plan.Repositories {
		names = append(names, r.Name)
	}
	ev := logger.Debug().
		Strs("repositories", names).
		Strs("profiles", plan.Profiles)
	if plan.Main != nil {
		ev = ev.Str("main", plan.Main.Name)
	}
	ev.Msg("Merge plan")
}
