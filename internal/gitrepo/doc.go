// Package gitrepo reads and interprets git remote configuration.
//
// RemoteReader implementations look up a remote's URL either through the git
// CLI or in-process via go-git. RepositoryIdentifier and ParseRemoteURL turn
// that URL into the short repository name and its owner and host.
package gitrepo
