// Package onboarding implements the sign-up wizard as a finite state
// machine.
//
// The wizard walks Welcome → Name → Age → Gender and then commits. There is
// no way back and no skipping. Transition is a pure function from a State
// and an Action to the next State plus the Effects the caller has to carry
// out (show an alert, commit a profile). Wizard wraps it for interactive use
// and performs the Commit effect through a Committer.
package onboarding
