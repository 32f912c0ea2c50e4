// Command labelctl works with switch labels from the shell.
//
// Usage:
//
//	labelctl splice LABEL LABEL [LABEL...]          Splice labels, nearest hop last
//	labelctl unsplice DEST MIDPATH                  Label of DEST as seen past MIDPATH
//	labelctl routes-through DEST MIDPATH            Does DEST continue MIDPATH
//	labelctl form --scheme S LABEL                  Detected form of LABEL
//	labelctl one-hop --scheme S LABEL               Is LABEL a single hop
//	labelctl reencode --scheme S --form N LABEL     Re-encode the lowest director
//	labelctl build [--file paths.json]              Build labels for paths
//	labelctl schemes                                List the encoding schemes
//
// Labels are given in dotted hex, for example 0000.0000.0000.0013.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
