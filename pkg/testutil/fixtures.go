package testutil

// Mask file contents used by the standard tree.
const (
	GentooMask = `# Copyright 2024 Gentoo Authors
# Distributed under the terms of the GNU General Public License v2

# Alice <alice@example.org> (2024-01-01)
# Known broken.
=dev-lang/foo-1.0

# Bob <bob@example.org> (2024-02-02)
# Removal in 30 days.
dev-util/bar
dev-util/baz
`

	ExtraMask = `# Carol <carol@example.org> (2024-03-03)
# Testing only.
>=app-misc/qux-2
`

	BaseProfileMask = `# Dave <dave@example.org> (2024-04-04)
# Arch specific.
sys-apps/thing
`
)

// BaseProfile is the profile make.profile inherits from in the standard
// tree.
const BaseProfile = "/var/db/repos/gentoo/profiles/base"

// SetupStandardTree lays out a main "gentoo" repository, an "extra"
// overlay and a make.profile inheriting gentoo's base profile, each with
// its own package.mask.
func (e *TestEnvironment) SetupStandardTree() {
	e.t.Helper()
	e.AddRepo(Repo{Name: "gentoo", Priority: -1000, Main: true, Mask: GentooMask})
	e.AddRepo(Repo{Name: "extra", Priority: 50, Mask: ExtraMask})
	e.AddProfile(BaseProfile, BaseProfileMask)
	e.SetMakeProfile(BaseProfile)
}
