// Package cli provides the interactive terminal client of the onboarding
// demo.
//
// It wires configuration, the local profile store, the session gate and the
// onboarding wizard. What the user sees depends on the session flag:
//
//   - signed out: the wizard, one prompt per step (welcome, name, age,
//     gender). A rejected answer prints a single alert and re-asks.
//   - signed in: the profile card and a small command loop
//     (show, store, signout, help, exit).
//
// Finishing the wizard or signing out flips the flag; the gate notices and
// the next prompt belongs to the other screen. See App.Root.
package cli
