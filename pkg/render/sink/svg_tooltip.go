package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/wordstack/pkg/render/chart"
)

const tooltipCSS = `
    #{{id}} .bar { transition: opacity 0.15s ease; }
    #{{id}} .bar:hover { opacity: 0.8; }
    #{{id}} .tooltip { pointer-events: none; }
    #{{id}} .tooltip.hidden { display: none; }`

const tooltipJS = `
    (function () {
      const root = document.getElementById('{{id}}');
      if (!root) return;
      const tip = root.querySelector('.tooltip');
      const text = tip.querySelector('text');
      const box = tip.querySelector('rect');
      root.querySelectorAll('.bar').forEach(bar => {
        bar.addEventListener('mouseenter', () => {
          text.textContent = bar.dataset.tooltip;
          const x = parseFloat(bar.getAttribute('x')) / 2 + {{half}};
          const y = parseFloat(bar.getAttribute('y')) + parseFloat(bar.getAttribute('height')) / 2;
          const w = text.getComputedTextLength() + 16;
          box.setAttribute('width', w.toFixed(1));
          tip.setAttribute('transform', 'translate(' + ({{left}} + x).toFixed(1) + ',' + ({{top}} + y - 12).toFixed(1) + ')');
          tip.classList.remove('hidden');
        });
        bar.addEventListener('mouseleave', () => tip.classList.add('hidden'));
      });
    })();`

func renderTooltip(buf *bytes.Buffer, c chart.Chart) {
	id := rootID(c)
	buf.WriteString(`  <g class="tooltip hidden">` + "\n")
	buf.WriteString(`    <rect height="24" rx="4" fill="#ffffff" stroke="#333333" opacity="0.95"/>` + "\n")
	buf.WriteString(`    <text x="8" y="16"></text>` + "\n")
	buf.WriteString("  </g>\n")

	r := strings.NewReplacer(
		"{{id}}", id,
		"{{half}}", fmt.Sprintf("%.1f", c.PlotWidth/2),
		"{{left}}", fmt.Sprintf("%.1f", c.Margins.Left),
		"{{top}}", fmt.Sprintf("%.1f", c.Margins.Top),
	)
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", r.Replace(tooltipCSS))
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", r.Replace(tooltipJS))
}
