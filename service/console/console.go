package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cheng762/coin-search/service/search"
)

const (
	selectCommand = ":select "
	quitCommand   = ":quit"
)

// Console 是终端前端：每行输入替换一次搜索词
type Console struct {
	in  io.Reader
	out io.Writer

	mu sync.Mutex
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Render 可作为 search.Renderer 使用
func (c *Console) Render(v search.View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v.Kind != search.ViewResults {
		fmt.Fprintln(c.out, v.Message)
		return
	}
	for i, card := range v.Cards {
		fmt.Fprintf(c.out, "%2d) %s [%s]\n", i+1, card.Title, card.ID)
		fmt.Fprintf(c.out, "    Icon: %s\n", card.ImageURL)
		fmt.Fprintf(c.out, "    Current Price: %s\n", card.Price)
		fmt.Fprintf(c.out, "    Market Cap: %s\n", card.MarketCap)
	}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Run 读取输入直到 EOF 或 :quit。
// ":select <id>" 输出点击提示，其余输入都作为新的搜索词。
func (c *Console) Run(p *search.Presenter) error {
	c.println(search.Placeholder + "  (:select <id>, :quit)")
	c.Render(p.View())

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == quitCommand:
			return nil
		case strings.HasPrefix(line, selectCommand):
			id := strings.TrimSpace(strings.TrimPrefix(line, selectCommand))
			msg, err := p.Select(id)
			switch {
			case errors.Is(err, search.ErrNotLoaded):
				c.Render(p.View())
			case err != nil:
				c.println(fmt.Sprintf("unknown coin: %s", id))
			default:
				c.println(msg)
			}
		default:
			p.SetQuery(line)
		}
	}
	return scanner.Err()
}
