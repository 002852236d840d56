// Package readme keeps a README in sync with its repository.
//
// The edits in this package are pure string transforms: UpdateTitle rewrites
// the first heading, UpdateCommands rewrites example clone and cd commands,
// and UpdateTree splices a generated directory tree between the
// TreeStartMarker and TreeEndMarker sentinels. Service composes them with the
// project name resolver and tree generator, reads the document and writes it
// back atomically. CommandBuilder exposes the workflow as a Cobra command.
package readme
