// Package skeleton embeds the static files shared by every generated
// project: TypeScript, linter and formatter configuration plus ignore rules.
package skeleton
