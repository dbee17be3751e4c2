// Copyright © 2026 One Concern

package model

import (
	"fmt"
	"strings"
)

// Contributor who committed the version
type Contributor struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	_     struct{}
}

func (c *Contributor) String() string {
	if c.Email == "" {
		return c.Name
	}
	if c.Name == "" {
		return c.Email
	}
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// ParseContributor is the inverse of String, for wire-form authors
// rendered as "Name <email>".
func ParseContributor(author string) Contributor {
	author = strings.TrimSpace(author)
	if open := strings.LastIndex(author, "<"); open >= 0 && strings.HasSuffix(author, ">") {
		return Contributor{
			Name:  strings.TrimSpace(author[:open]),
			Email: author[open+1 : len(author)-1],
		}
	}
	if strings.Contains(author, "@") {
		return Contributor{Email: author}
	}
	return Contributor{Name: author}
}
