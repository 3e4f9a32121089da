// Package templates renders the generated artifacts of a scaffolded project:
// README, deploy script, Hardhat config, package.json and the documentation
// pages. The text templates are embedded from files/.
package templates
