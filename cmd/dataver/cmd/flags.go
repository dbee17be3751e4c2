// Copyright © 2026 One Concern

package cmd

import (
	"github.com/oneconcern/dataver/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagsT struct {
	root struct {
		storePath string
		logLevel  string
	}
	contributor struct {
		name  string
		email string
	}
	dataset struct {
		ID string
	}
	version struct {
		ID      string
		Message string
		File    string
		Limit   int
	}
	branch struct {
		Name        string
		Base        string
		Description string
	}
	diff struct {
		From string
		To   string
	}
	history struct {
		MaxDepth int
	}
	tag struct {
		Name  string
		Names []string
	}
}

var params = flagsT{}

func addStorePathFlag(fs *pflag.FlagSet) string {
	store := "store"
	fs.StringVar(&params.root.storePath, store, "",
		"Path to the local store holding payloads and the metadata graph")
	return store
}

func addLogLevelFlag(fs *pflag.FlagSet) string {
	loglevel := "loglevel"
	fs.StringVar(&params.root.logLevel, loglevel, "",
		"The log level (debug, info, none)")
	return loglevel
}

func addContributorFlags(fs *pflag.FlagSet) {
	fs.StringVar(&params.contributor.name, "name", "",
		"The name of the contributor")
	fs.StringVar(&params.contributor.email, "email", "",
		"The email of the contributor")
}

func addDatasetFlag(fs *pflag.FlagSet) string {
	dataset := "dataset"
	fs.StringVar(&params.dataset.ID, dataset, "", "The name of the dataset")
	return dataset
}

func addVersionFlag(fs *pflag.FlagSet) string {
	version := "version"
	fs.StringVar(&params.version.ID, version, "", "The id of a version")
	return version
}

func addMessageFlag(fs *pflag.FlagSet) string {
	message := "message"
	fs.StringVar(&params.version.Message, message, "", "The message describing the commit")
	return message
}

func addFileFlag(fs *pflag.FlagSet) string {
	file := "file"
	fs.StringVar(&params.version.File, file, "", "Path to a JSON file holding the records to commit")
	return file
}

func addLimitFlag(fs *pflag.FlagSet) string {
	limit := "limit"
	fs.IntVar(&params.version.Limit, limit, 0, "Cap the number of versions listed")
	return limit
}

func addBranchNameFlag(fs *pflag.FlagSet) string {
	branch := "branch"
	fs.StringVar(&params.branch.Name, branch, model.MainBranch, "The name of a branch")
	return branch
}

func addBranchBaseFlag(fs *pflag.FlagSet) string {
	base := "base"
	fs.StringVar(&params.branch.Base, base, "", "The version the new branch starts at (defaults to the head of main)")
	return base
}

func addBranchDescriptionFlag(fs *pflag.FlagSet) string {
	description := "description"
	fs.StringVar(&params.branch.Description, description, "", "A description for the branch")
	return description
}

func addDiffFromFlag(fs *pflag.FlagSet) string {
	from := "from"
	fs.StringVar(&params.diff.From, from, "", "The version to diff from")
	return from
}

func addDiffToFlag(fs *pflag.FlagSet) string {
	to := "to"
	fs.StringVar(&params.diff.To, to, "", "The version to diff to")
	return to
}

func addMaxDepthFlag(fs *pflag.FlagSet) string {
	maxDepth := "max-depth"
	fs.IntVar(&params.history.MaxDepth, maxDepth, 0, "Bound the number of ancestors returned (0 for unbounded)")
	return maxDepth
}

func addTagFlag(fs *pflag.FlagSet) string {
	tag := "tag"
	fs.StringVar(&params.tag.Name, tag, "", "A free-text tag")
	return tag
}

func addTagsFlag(fs *pflag.FlagSet) string {
	tag := "tag"
	fs.StringSliceVar(&params.tag.Names, tag, nil, "Tags attached to the new version (repeatable)")
	return tag
}

func paramsToContributor() model.Contributor {
	return model.Contributor{
		Name:  params.contributor.name,
		Email: params.contributor.email,
	}
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			wrapFatalln("mark required flag", err)
			return
		}
	}
}
