package builtin

import "github.com/hupe1980/exemplar/core"

func channelUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "channels-buffered",
			Title: "Buffered channels decouple send from receive",
			Topic: TopicConcurrency,
			Source: `ch := make(chan string, 2)
ch <- "first"   // does not block: buffer has room
ch <- "second"
close(ch)

for msg := range ch { // range drains until the channel is closed
	fmt.Println(msg)
}
// A third unbuffered send would have blocked forever here.`,
			Body: func(rc *core.RunContext) error {
				ch := make(chan string, 2)
				ch <- "first"
				ch <- "second"
				close(ch)

				for msg := range ch {
					rc.Println(msg)
				}
				return nil
			},
			Expected: []string{"first", "second"},
		},
		{
			ID:    "channels-pipeline",
			Title: "Channel pipelines preserve ordering",
			Topic: TopicConcurrency,
			Source: `nums := make(chan int)
squares := make(chan int)

go func() {
	for _, n := range []int{1, 2, 3} {
		nums <- n
	}
	close(nums)
}()
go func() {
	for n := range nums {
		squares <- n * n
	}
	close(squares)
}()

for s := range squares { // only the main goroutine prints
	fmt.Println(s)
}`,
			Body: func(rc *core.RunContext) error {
				nums := make(chan int)
				squares := make(chan int)

				go func() {
					for _, n := range []int{1, 2, 3} {
						nums <- n
					}
					close(nums)
				}()
				go func() {
					for n := range nums {
						squares <- n * n
					}
					close(squares)
				}()

				for s := range squares {
					rc.Println(s)
				}
				return nil
			},
			Expected: []string{"1", "4", "9"},
		},
	}
}
