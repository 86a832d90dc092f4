package main

import (
	"chat-app/cipher"
	"chat-app/domain/chat"
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const maskedKeyLength = 8

func (i *inspector) title(text string) {
	header := fmt.Sprintf("  ====== %s ======", text)
	if i.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(i.out, header)
}

func (i *inspector) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(i.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (i *inspector) renderUsers() {
	profiles := i.tables.Users.Profiles()
	i.title(fmt.Sprintf("%d users", len(profiles)))

	table := i.newTable("Login", "Name", "Surname", "Chats", "Unread")
	for _, p := range profiles {
		counters := i.tables.Counters.List(p.Login)
		unread := lo.SumBy(counters, func(c chat.Counter) int { return c.Number })
		table.Append([]string{p.Login, p.Name, p.Surname, strconv.Itoa(len(counters)), strconv.Itoa(unread)})
	}
	table.Render()
}

func (i *inspector) renderChats() {
	chats := i.tables.Chats.Chats()
	i.title(fmt.Sprintf("%d chats", len(chats)))

	table := i.newTable("Chat", "Users", "Messages", "Unread", "Last message")
	for _, c := range chats {
		unread := lo.CountBy(c.Messages, func(m chat.Message) bool { return !m.Read })
		last := "-"
		if m, ok := c.LastMessage(); ok {
			last = m.ID + " by " + m.Login
		}
		table.Append([]string{string(c.ID), strings.Join(c.Users, ","),
			strconv.Itoa(len(c.Messages)), strconv.Itoa(unread), last})
	}
	table.Render()
}

func (i *inspector) renderCounters(login string) {
	all, logins := i.tables.Counters.All()
	if login != "" {
		logins = lo.Filter(logins, func(l string, _ int) bool { return l == login })
	}
	i.title("Counters")

	table := i.newTable("Login", "Chat", "Number")
	for _, l := range logins {
		for _, c := range all[l] {
			table.Append([]string{l, string(c.ChatID), strconv.Itoa(c.Number)})
		}
	}
	table.Render()
}

func (i *inspector) renderKeys(reveal bool) {
	keys := i.tables.Chats.Keys()
	i.title(fmt.Sprintf("%d chat keys", len(keys)))

	table := i.newTable("Chat", "Key")
	for _, k := range keys {
		key := k.Key
		if !reveal && len(key) > maskedKeyLength {
			key = key[:maskedKeyLength] + "..."
		}
		table.Append([]string{string(k.ID), key})
	}
	table.Render()
}

func (i *inspector) renderMessages(id chat.ChatID, raw bool) error {
	c, err := i.tables.Chats.Get(id)
	if err != nil {
		return err
	}
	key, err := i.tables.Chats.Key(id)
	if err != nil && !raw {
		return err
	}
	i.title(fmt.Sprintf("Chat %s, %d messages", id, len(c.Messages)))

	table := i.newTable("ID", "Login", "Read", "Text", "Metadata")
	for _, m := range c.Messages {
		text := m.Text
		if !raw {
			if text, err = cipher.Decrypt(m.Text, key); err != nil {
				text = "<undecryptable>"
			}
		}
		table.Append([]string{m.ID, m.Login, strconv.FormatBool(m.Read), text, string(m.Metadata)})
	}
	table.Render()
	return nil
}
