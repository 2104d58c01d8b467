package flownet

import (
	"testing"

	"github.com/rhartert/flowsearch/flownet/route"
)

func routeOf(start int, stops ...[2]int) *route.Route {
	r := route.New(start, len(stops))
	for _, s := range stops {
		r.Append(s[0], s[1])
	}
	return r
}

func TestPlan_Validate(t *testing.T) {
	net := mustNetwork(t, lineDefs()) // A=0 B=1 C=2
	dt := mustTable(t, net, "A")

	testCases := []struct {
		desc    string
		plan    Plan
		wantErr bool
	}{
		{
			desc: "empty plan",
			plan: Plan{Routes: []*route.Route{routeOf(0)}},
		},
		{
			desc: "one agent",
			plan: Plan{Flow: 26, Routes: []*route.Route{routeOf(0, [2]int{1, 2}, [2]int{2, 4})}},
		},
		{
			desc: "two agents",
			plan: Plan{Flow: 28, Routes: []*route.Route{
				routeOf(0, [2]int{1, 2}),
				routeOf(0, [2]int{2, 3}),
			}},
		},
		{
			desc: "opened twice",
			plan: Plan{Flow: 52, Routes: []*route.Route{
				routeOf(0, [2]int{1, 2}),
				routeOf(0, [2]int{1, 2}),
			}},
			wantErr: true,
		},
		{
			desc:    "after the budget",
			plan:    Plan{Flow: -13, Routes: []*route.Route{routeOf(0, [2]int{1, 5})}},
			wantErr: true,
		},
		{
			desc:    "too early",
			plan:    Plan{Flow: 6, Routes: []*route.Route{routeOf(0, [2]int{2, 1})}},
			wantErr: true,
		},
		{
			desc:    "node with no flow",
			plan:    Plan{Routes: []*route.Route{routeOf(1, [2]int{0, 2})}},
			wantErr: true,
		},
		{
			desc:    "wrong flow",
			plan:    Plan{Flow: 30, Routes: []*route.Route{routeOf(0, [2]int{1, 2})}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			gotErr := tc.plan.Validate(net, dt, 4)

			if tc.wantErr && gotErr == nil {
				t.Errorf("Validate(): want error, got nil")
			}
			if !tc.wantErr && gotErr != nil {
				t.Errorf("Validate(): want no error, got %s", gotErr)
			}
		})
	}
}

func TestNewPlan(t *testing.T) {
	openings := []Opening{
		{Node: 1, Agent: 0, Time: 2},
		{Node: 2, Agent: 1, Time: 3},
	}
	net := mustNetwork(t, lineDefs())

	got := newPlan(0, 2, 28, openings).Format(net)

	want := "agent 0: A -> B@2\nagent 1: A -> C@3\n"
	if got != want {
		t.Errorf("newPlan(): want %q, got %q", want, got)
	}
}

func TestNewPlan_panicsOnInvalidTrail(t *testing.T) {
	openings := []Opening{
		{Node: 2, Agent: 0, Time: 3},
		{Node: 1, Agent: 0, Time: 2}, // before the previous opening
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("newPlan(): want panic with a trail going back in time")
		}
	}()
	newPlan(0, 1, 0, openings)
}
