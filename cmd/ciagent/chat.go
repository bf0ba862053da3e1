package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/ciagent"
)

// Run executes the chat command. Questions are read line by line until
// end of input or "exit"/"quit".
func (c *ChatCmd) Run(deps *Dependencies) error {
	companyID, err := ciagent.ResolveCompany(c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	session := ciagent.NewSession(companyID)
	fmt.Fprintln(deps.Stdout, renderMarkdown(session.Turns[0].Content, c.Raw))

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		session.Add(ciagent.RoleUser, question)

		spin := startSpinner(deps.Stderr, "Thinking...")
		answer, err := deps.Asker.Ask(deps.Ctx, companyID, question)
		spin.Stop()

		var text string
		if err != nil {
			deps.Logger.Error("ask failed", "company", companyID, "err", err)
			text = errorText(err)
		} else {
			text = answer.Text
		}

		session.Add(ciagent.RoleAssistant, text)
		fmt.Fprintln(deps.Stdout, renderMarkdown(text, c.Raw))

		if err := deps.Ctx.Err(); err != nil {
			return err
		}
	}
	fmt.Fprintln(deps.Stdout)
	deps.Logger.Debug("chat ended", "company", companyID, "questions", len(session.Questions()))

	return scanner.Err()
}
