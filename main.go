package main

import "github.com/dorsabag/bucketListBackendDeploy/cmd"

func main() {
	cmd.Execute()
}
